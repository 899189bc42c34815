package user

type ServiceGroup struct {
	ChatbotService IChatbotService
	EmbedService   IEmbedService
	MatchService   IMatchService
	Validator      IValidator
}

func NewServiceGroup() ServiceGroup {
	validator := &Validator{}
	embed := NewEmbedService()
	return ServiceGroup{
		ChatbotService: NewChatbotService(validator, embed),
		EmbedService:   embed,
		MatchService:   NewMatchService(),
		Validator:      validator,
	}
}
