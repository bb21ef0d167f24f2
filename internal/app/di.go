package app

import (
	"context"
	"log"

	"backend/internal/adapter/http/handler"
	geminiadapter "backend/internal/adapter/llm/gemini"
	openaiadapter "backend/internal/adapter/llm/openai"
	"backend/internal/config"
	"backend/internal/port/llm"
	generateusecase "backend/internal/usecase/generate"
	validateusecase "backend/internal/usecase/validate"
)

// Container は API で使用する依存を保持する。
type Container struct {
	PlatformHandler *handler.PlatformHandler
	GenerateHandler *handler.GenerateHandler
	ValidateHandler *handler.ValidateHandler

	generatorCloser func() error
}

// テストから差し替えるための生成器ファクトリ。
var (
	openaiGeneratorFactory = func(cfg *config.OpenAIConfig) (llm.Generator, func() error, error) {
		g, err := openaiadapter.NewGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL)
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	}
	geminiGeneratorFactory = func(ctx context.Context, cfg *config.GeminiConfig) (llm.Generator, func() error, error) {
		g, err := geminiadapter.NewGenerator(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, nil, err
		}
		return g, g.Close, nil
	}
)

/**
 * NewContainer は依存を初期化して返す。
 * 生成器が構成できない場合でも起動は続け、生成はフォールバックで賄う。
 */
func NewContainer(ctx context.Context) (*Container, error) {
	config.LoadDotEnv()

	generator, closer := provideGenerator(ctx)

	generateU := generateusecase.NewUsecase(generator)
	batchU := generateusecase.NewBatchUsecase(generateU)
	validateU := validateusecase.NewUsecase()

	return &Container{
		PlatformHandler: handler.NewPlatformHandler(),
		GenerateHandler: handler.NewGenerateHandler(generateU, batchU),
		ValidateHandler: handler.NewValidateHandler(validateU),
		generatorCloser: closer,
	}, nil
}

// Close は保持している依存を後片付けする。
func (c *Container) Close() error {
	if c == nil || c.generatorCloser == nil {
		return nil
	}
	return c.generatorCloser()
}

/**
 * LLM_PROVIDER の指定に応じて生成器を構築する。
 * API キー欠落などで構築できない場合は nil を返し、警告だけ残す。
 */
func provideGenerator(ctx context.Context) (llm.Generator, func() error) {
	switch config.LoadLLMProvider() {
	case "gemini":
		cfg, err := config.LoadGeminiConfigFromEnv()
		if err != nil {
			log.Printf("app: gemini 構成を読み込めません。フォールバック生成で起動します: %v", err)
			return nil, nil
		}
		generator, closer, err := geminiGeneratorFactory(ctx, cfg)
		if err != nil {
			log.Printf("app: gemini 生成器を構築できません。フォールバック生成で起動します: %v", err)
			return nil, nil
		}
		return generator, closer
	default:
		cfg, err := config.LoadOpenAIConfigFromEnv()
		if err != nil {
			log.Printf("app: openai 構成を読み込めません。フォールバック生成で起動します: %v", err)
			return nil, nil
		}
		generator, closer, err := openaiGeneratorFactory(cfg)
		if err != nil {
			log.Printf("app: openai 生成器を構築できません。フォールバック生成で起動します: %v", err)
			return nil, nil
		}
		return generator, closer
	}
}
