package widget

// StyleElementId 嵌入脚本注入的样式元素id, 重复执行init时据此防重
const StyleElementId = "chatboss-styles"

// baseStyles 挂件的固定样式表, 随脚本内联下发, 不依赖外部资源
const baseStyles = `.chatboss-widget { position: fixed; bottom: 24px; right: 24px; font-family: 'Inter', sans-serif; z-index: 999999; }
.chatboss-bubble { width: 56px; height: 56px; border-radius: 50%; display: flex; align-items: center; justify-content: center; cursor: pointer; box-shadow: 0 18px 48px rgba(15, 23, 42, 0.21); font-weight: 600; color: #fff; transition: transform 0.2s ease, box-shadow 0.2s ease; }
.chatboss-bubble:hover { transform: translateY(-2px); box-shadow: 0 20px 54px rgba(15, 23, 42, 0.24); }
.chatboss-window { width: min(360px, calc(100vw - 32px)); height: 480px; max-height: calc(100vh - 120px); border-radius: 20px; overflow: hidden; box-shadow: 0 30px 80px rgba(15, 23, 42, 0.28); background: #fff; display: flex; flex-direction: column; }
.chatboss-header { padding: 16px 20px; display: flex; flex-direction: column; gap: 4px; color: #fff; }
.chatboss-title { font-size: 18px; font-weight: 700; }
.chatboss-tag { font-size: 13px; opacity: 0.9; }
.chatboss-body { flex: 1; background: #f8fafc; padding: 20px; overflow-y: auto; display: flex; flex-direction: column; gap: 12px; }
.chatboss-message { max-width: 80%; padding: 12px 14px; border-radius: 16px; line-height: 1.4; font-size: 14px; box-shadow: 0 8px 20px rgba(15, 23, 42, 0.12); }
.chatboss-message.agent { align-self: flex-start; }
.chatboss-message.user { align-self: flex-end; }
.chatboss-input { padding: 16px; border-top: 1px solid rgba(15, 23, 42, 0.06); background: #fff; display: flex; flex-direction: column; gap: 8px; }
.chatboss-input textarea { width: 100%; resize: none; border: 1px solid rgba(15, 23, 42, 0.08); border-radius: 12px; padding: 12px; min-height: 52px; font-size: 14px; font-family: inherit; }
.chatboss-input textarea:focus { outline: 2px solid rgba(15, 23, 42, 0.15); }
.chatboss-send { border: none; border-radius: 12px; padding: 12px; font-weight: 600; cursor: pointer; color: #fff; display: flex; align-items: center; justify-content: center; gap: 6px; transition: filter 0.15s ease; }
.chatboss-send:disabled { opacity: 0.6; cursor: not-allowed; }
.chatboss-send:not(:disabled):hover { filter: brightness(1.05); }
.chatboss-quick-replies { display: flex; flex-wrap: wrap; gap: 8px; }
.chatboss-quick-replies button { border: 1px solid rgba(15, 23, 42, 0.08); border-radius: 999px; padding: 8px 12px; font-size: 13px; cursor: pointer; background: rgba(15, 23, 42, 0.02); transition: background 0.15s ease; }
.chatboss-quick-replies button:hover { background: rgba(15, 23, 42, 0.06); }`

// 模板占位符, BuildScript时替换为JSON字符串字面量
const (
	configMarker = "__CHATBOSS_CONFIG__"
	stylesMarker = "__CHATBOSS_STYLES__"
)

// widgetProgram 固定的挂件程序
// 配置只以一个JSON字符串进入, 由JSON.parse解析, 程序本身不做字符串拼接代码
// 状态(开关/步骤队列)封装在挂件实例上, 同页多次挂载互不干扰
const widgetProgram = `;(function () {
  "use strict";

  var CONFIG = JSON.parse(__CHATBOSS_CONFIG__);
  var STYLES = __CHATBOSS_STYLES__;

  function h(tag, className, text) {
    var el = document.createElement(tag);
    if (className) el.className = className;
    if (text) el.textContent = text;
    return el;
  }

  function ChatbossWidget(config) {
    this.config = config;
    this.steps = (config.steps || []).slice();
    this.isOpen = false;
    this.root = null;
  }

  ChatbossWidget.prototype.injectStyles = function () {
    if (document.getElementById("chatboss-styles")) return;
    var style = document.createElement("style");
    style.id = "chatboss-styles";
    style.textContent = STYLES;
    document.head.appendChild(style);
  };

  ChatbossWidget.prototype.findAnswer = function (message) {
    var lower = message.toLowerCase();
    var faqs = this.config.faqs || [];
    for (var i = 0; i < faqs.length; i++) {
      var faq = faqs[i];
      var tokens = faq.question.toLowerCase().split(/[^a-z0-9]+/);
      var score = 0;
      for (var j = 0; j < tokens.length; j++) {
        if (tokens[j] && lower.indexOf(tokens[j]) !== -1) score += 1;
      }
      if (score >= (faq.question.length < 40 ? 2 : 3)) return faq.answer;
    }
    if (this.steps.length) {
      var next = this.steps.shift();
      this.steps.push(next);
      return next.message;
    }
    return this.config.fallbackResponse;
  };

  ChatbossWidget.prototype.renderMessage = function (container, kind, text) {
    var bubble = h("div", "chatboss-message " + kind);
    bubble.textContent = text;
    if (kind === "user") {
      bubble.style.background = this.config.primaryColor;
      bubble.style.color = "#ffffff";
    } else {
      bubble.style.background = "#e2e8f0";
      bubble.style.color = "#0f172a";
    }
    container.appendChild(bubble);
    container.scrollTop = container.scrollHeight;
  };

  ChatbossWidget.prototype.mount = function () {
    this.injectStyles();
    var self = this;
    var config = this.config;

    var root = h("div", "chatboss-widget");
    var bubble = h("button", "chatboss-bubble", "AI");
    bubble.style.background = config.primaryColor;

    var windowEl = h("div", "chatboss-window");
    windowEl.style.display = "none";

    var header = h("div", "chatboss-header");
    header.style.background =
      "linear-gradient(135deg, " + config.primaryColor + ", " + config.secondaryColor + ")";
    header.appendChild(h("div", "chatboss-title", config.name));
    header.appendChild(h("div", "chatboss-tag", config.industry + " assistant - " + config.tone + " tone"));

    var body = h("div", "chatboss-body");
    this.renderMessage(body, "agent", config.greeting);

    var input = h("div", "chatboss-input");
    var textarea = h("textarea");
    textarea.placeholder = "Ask a question...";
    var send = h("button", "chatboss-send", "Send");
    send.style.background = config.primaryColor;

    function sendMessage() {
      var value = textarea.value.trim();
      if (!value || send.disabled) return;
      self.renderMessage(body, "user", value);
      textarea.value = "";
      send.disabled = true;
      window.setTimeout(function () {
        self.renderMessage(body, "agent", self.findAnswer(value));
        send.disabled = false;
      }, 350);
    }

    var quickReplies = h("div", "chatboss-quick-replies");
    (config.quickReplies || []).forEach(function (reply) {
      var button = h("button", "", reply.label);
      button.addEventListener("click", function () {
        textarea.value = reply.message;
        sendMessage();
      });
      quickReplies.appendChild(button);
    });

    input.appendChild(textarea);
    input.appendChild(quickReplies);
    input.appendChild(send);

    windowEl.appendChild(header);
    windowEl.appendChild(body);
    windowEl.appendChild(input);
    root.appendChild(windowEl);
    root.appendChild(bubble);
    document.body.appendChild(root);
    this.root = root;

    bubble.addEventListener("click", function () {
      self.isOpen = !self.isOpen;
      windowEl.style.display = self.isOpen ? "flex" : "none";
      if (self.isOpen) textarea.focus();
    });

    send.addEventListener("click", sendMessage);
    textarea.addEventListener("keydown", function (event) {
      if (event.key === "Enter" && !event.shiftKey) {
        event.preventDefault();
        sendMessage();
      }
    });
  };

  function boot() {
    new ChatbossWidget(CONFIG).mount();
  }

  if (document.readyState === "loading") {
    document.addEventListener("DOMContentLoaded", boot);
  } else {
    boot();
  }
})();
`
