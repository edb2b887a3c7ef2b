package assist_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"inkwell/internal/api/controllers"
	"inkwell/internal/repositories"
	"inkwell/internal/services"
	"inkwell/pkg/assist"
)

var Module = fx.Provide(
	provideImprover, provideOpenAIClient, provideEmbedder, provideAssistService, provideAssistController)

// provideImprover selects the generation backend. Gemini is the default;
// ASSIST_PROVIDER=openai switches to the alternate provider.
func provideImprover(openaiClient *assist.OpenAIClient) services.ContentImprover {
	if os.Getenv("ASSIST_PROVIDER") == "openai" {
		return openaiClient
	}

	client, err := assist.NewGeminiClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	return client
}

func provideOpenAIClient() *assist.OpenAIClient {
	return assist.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}

func provideEmbedder(openaiClient *assist.OpenAIClient) services.Embedder {
	return openaiClient
}

func provideAssistService(
	improver services.ContentImprover,
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
) services.AssistServiceInterface {
	return services.NewAssistService(improver, userRepo, postRepo)
}

func provideAssistController(assistService services.AssistServiceInterface) *controllers.AssistController {
	return controllers.NewAssistController(assistService)
}
