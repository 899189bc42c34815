package user

type ApiGroup struct {
	ChatbotApi ChatbotApi
	EmbedApi   EmbedApi
	ChatApi    ChatApi
}
