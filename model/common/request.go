package common

// PreviewChatRequest 仪表盘预览对话的请求体
// sessionId用于区分同一挂件的不同预览会话的步骤轮转状态, 可为空
type PreviewChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
}

// PreviewChatResponse 预览对话的应答
// source取值: faq / step / fallback
type PreviewChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}
