package main

import (
	"os"

	"github.com/lshigami/englishhub/internal/cli"
	"github.com/rs/zerolog/log"
)

// @title EnglishHub Learning API
// @version 1.0
// @description Lesson exercises with instant feedback, lesson-gated tests and attempt history.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("englishhub exited with error")
		os.Exit(1)
	}
}
