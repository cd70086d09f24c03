package app

import (
	"fmt"
	"net/http"
	"wellness/internal/app/deps"
	"wellness/internal/app/services"
	"wellness/internal/http/handlers/auth"
	registerdevice "wellness/internal/http/handlers/devices/register_device"
	generatemealplan "wellness/internal/http/handlers/mealplans/generate_meal_plan"
	viewmealplan "wellness/internal/http/handlers/mealplans/view_meal_plan"
	createreminder "wellness/internal/http/handlers/reminders/create_reminder"
	deletereminders "wellness/internal/http/handlers/reminders/delete_reminders"
	editreminder "wellness/internal/http/handlers/reminders/edit_reminder"
	"wellness/internal/http/handlers/reminders/events"
	listreminders "wellness/internal/http/handlers/reminders/list_reminders"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	remindersRouter := chi.NewRouter()
	remindersRouter.Use(auth.SetUserIDToContext)
	remindersRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))
	remindersRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	remindersRouter.Method(http.MethodDelete, "/", deletereminders.New(s.DeleteReminders))
	remindersRouter.Method(http.MethodPatch, "/{entryID}", editreminder.New(s.EditReminder))
	remindersRouter.Method(http.MethodGet, "/events", events.New(deps.Logger, deps.SseServer))

	mealPlansRouter := chi.NewRouter()
	mealPlansRouter.Use(auth.SetUserIDToContext)
	mealPlansRouter.Method(
		http.MethodPost,
		"/",
		generatemealplan.New(s.GenerateMealPlan, deps.Config.SpoonacularUserEmail),
	)
	mealPlansRouter.Method(http.MethodGet, "/", viewmealplan.New(s.ViewMealPlan))

	devicesRouter := chi.NewRouter()
	devicesRouter.Use(auth.SetUserIDToContext)
	devicesRouter.Method(http.MethodPut, "/", registerdevice.New(s.RegisterDevice))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/reminders", remindersRouter)
	router.Mount("/mealplans", mealPlansRouter)
	router.Mount("/devices", devicesRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
