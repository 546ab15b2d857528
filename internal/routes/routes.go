package routes

import (
	"taxi-translator-backend/internal/auth"
	"taxi-translator-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Users       *handlers.UserHandler
	Translation *handlers.TranslationHandler
	Admin       *handlers.AdminHandler
	Speech      *handlers.SpeechHandler
}

func Setup(app *fiber.App, h Handlers, tokens *auth.TokenManager) {
	// Account routes - registration and login
	app.Post("/register", h.Users.Register)
	app.Post("/login", h.Users.Login)

	// Translation routes - core translation flow
	app.Post("/translate", h.Translation.Translate)
	app.Get("/languages", h.Translation.GetLanguages)
	app.Get("/test-translation", h.Translation.TestTranslation)
	app.Get("/search/translations", h.Translation.SearchTranslations)

	// Speech routes - audio transcription
	app.Post("/speech-to-text", h.Speech.SpeechToText)

	// User routes - profile and history
	users := app.Group("/users")
	{
		users.Get("/:id/profile", h.Users.GetProfile)
		users.Put("/:id/profile", h.Users.UpdateProfile)
		users.Get("/:id/translation-history", h.Users.GetTranslationHistory)
		users.Put("/:id/language", h.Users.UpdateLanguage)
	}

	// Admin routes - login is open, stats requires a Bearer token
	admin := app.Group("/admin")
	{
		admin.Post("/login", h.Admin.Login)
		admin.Get("/stats", auth.RequireAdmin(tokens), h.Admin.GetSystemStats)
	}
}
