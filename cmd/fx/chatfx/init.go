package chatfx

import (
	"go.uber.org/fx"

	"konkanbliss/internal/services"
)

var Module = fx.Provide(
	provideChatService)

func provideChatService() services.ChatServiceInterface {
	return services.NewChatService()
}
