package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"beamx-scorecard/backend/internal/ai"
	"beamx-scorecard/backend/internal/api"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on process environment")
	}

	aiCfg := ai.Config{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		Model:   os.Getenv("OPENAI_MODEL"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	}
	if temp := os.Getenv("OPENAI_TEMPERATURE"); temp != "" {
		if v, err := strconv.ParseFloat(temp, 64); err == nil {
			aiCfg.Temperature = v
		}
	}
	if maxTokens := os.Getenv("OPENAI_MAX_TOKENS"); maxTokens != "" {
		if v, err := strconv.Atoi(maxTokens); err == nil {
			aiCfg.MaxTokens = v
		}
	}

	origins := []string{
		"https://beamxsolutions.com",
		"https://beamxsolutions.netlify.app",
	}
	if env := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(env, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	disableAI := strings.EqualFold(strings.TrimSpace(os.Getenv("SCORECARD_DISABLE_AI")), "true")

	cfg := api.Config{
		AllowedOrigins: origins,
		AIConfig:       aiCfg,
		DisableAI:      disableAI,
		ReportCTAURL:   strings.TrimSpace(os.Getenv("REPORT_CTA_URL")),
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router := server.Router()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logrus.Infof("starting scorecard backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
