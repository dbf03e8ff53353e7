package bootstrap

import (
	"log"
	"time"

	"faq-assistant-be/internal/config"
	"faq-assistant-be/internal/controller"
	"faq-assistant-be/internal/pkg/logger"
	"faq-assistant-be/internal/repository/memory"
	"faq-assistant-be/internal/service"
	"faq-assistant-be/pkg/faq/response"
	"faq-assistant-be/pkg/knowledge"
	"faq-assistant-be/pkg/llm/openai"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	AdminController controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared facades
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Knowledge Store
	// Loaded through a single-initialization provider; warm it here so a bad
	// file shows up in the logs at boot, while requests still get a 503 (and
	// a retry on the next request) instead of a dead process.
	storeProvider := knowledge.NewProvider(cfg.Knowledge.FilePath)
	if store, err := storeProvider.Get(); err != nil {
		log.Printf("[WARN] Knowledge base not loadable at startup: %v", err)
	} else {
		log.Printf("[INFO] Knowledge base loaded with %d FAQ entries from %s",
			len(store.Entries()), cfg.Knowledge.FilePath)
	}

	// 4. Generation Provider
	llmProvider := openai.NewOpenAIProvider(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.ChatModel,
	)

	composer := response.NewComposer(llmProvider, cfg.OpenAI.ChatModel, cfg.OpenAI.Temperature, nil)
	answerCache := memory.NewAnswerCache(time.Duration(cfg.Knowledge.RewriteCacheTTL) * time.Minute)

	// 5. Services
	chatService := service.NewChatService(
		storeProvider,
		composer,
		answerCache,
		pubSub,
		cfg.Knowledge.MatchThreshold,
		sysLogger,
	)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	// 6. Controllers
	return &Container{
		ChatController:  controller.NewChatController(chatService, sysLogger),
		AdminController: controller.NewAdminController(sysLogger),
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
