package main

import (
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/rs/zerolog/log"

	accountsx "alexbuddy/agent/accounts"
	buddyx "alexbuddy/agent/buddy"
	dispatchx "alexbuddy/agent/dispatch"
	intentsx "alexbuddy/agent/intents"
	memoryx "alexbuddy/agent/memory"
	webhookx "alexbuddy/agent/webhook"
	configx "alexbuddy/pkg/config"
	_ "alexbuddy/pkg/logger/autoload"
	llmx "alexbuddy/pkg/llm"
)

type AppConfig struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" split_words:"true" default:":8080"`
	Timezone   string `envconfig:"TIMEZONE" split_words:"true" default:"America/New_York"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("APP")

	location, err := time.LoadLocation(appCfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", appCfg.Timezone).Msg("load timezone")
	}

	llmCfg := configx.MustNew[llmx.Config]("LLM")
	generator := llmx.MustNew(*llmCfg)

	memoryCfg := configx.MustNew[memoryx.UpstashRedisConfig]("MEMORY_REDIS")
	memoryStore, err := memoryx.NewUpstashRedisStore(*memoryCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize conversation memory store")
	}

	accountsCfg := configx.MustNew[accountsx.Config]("ACCOUNTS")
	accountStore, err := accountsx.NewStore(*accountsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize account store")
	}
	defer accountStore.Close()

	invoker, err := buddyx.New(generator, memoryStore, buddyx.WithLocation(location))
	if err != nil {
		log.Fatal().Err(err).Msg("initialize agent invoker")
	}

	fallback, err := intentsx.NewFallbackHandler(invoker)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize fallback handler")
	}

	dispatcher, err := dispatchx.New(
		intentsx.NewIdentityHandler(),
		intentsx.NewHelplineHandler(),
		fallback,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize dispatcher")
	}

	handler, err := webhookx.NewHandler(dispatcher, accountStore)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize webhook handler")
	}

	s := server.Default(server.WithHostPorts(appCfg.ListenAddr))
	handler.RegisterRoutes(s)

	log.Info().Str("addr", appCfg.ListenAddr).Msg("alex buddy fulfillment listening")
	s.Spin()
}
