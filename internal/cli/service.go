package cli

import "llm-game-gen/internal/app"

func newAppService() app.Service {
	return app.NewService()
}
