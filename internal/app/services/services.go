package services

import (
	"wellness/internal/app/deps"
	drl "wellness/internal/core/domain/rate_limiter"
	"wellness/internal/core/services"
	createreminder "wellness/internal/core/services/create_reminder"
	deletereminders "wellness/internal/core/services/delete_reminders"
	editreminder "wellness/internal/core/services/edit_reminder"
	generatemealplan "wellness/internal/core/services/generate_meal_plan"
	listreminders "wellness/internal/core/services/list_reminders"
	ratelimiting "wellness/internal/core/services/rate_limiting"
	registerdevice "wellness/internal/core/services/register_device"
	schedulereminders "wellness/internal/core/services/schedule_reminders"
	sendnotification "wellness/internal/core/services/send_notification"
	viewmealplan "wellness/internal/core/services/view_meal_plan"
)

type Services struct {
	CreateReminder  services.Service[createreminder.Input, createreminder.Result]
	EditReminder    services.Service[editreminder.Input, editreminder.Result]
	ListReminders   services.Service[listreminders.Input, listreminders.Result]
	DeleteReminders services.Service[deletereminders.Input, deletereminders.Result]

	ScheduleReminders services.Service[schedulereminders.Input, schedulereminders.Result]
	SendNotification  services.Service[sendnotification.Input, sendnotification.Result]

	GenerateMealPlan services.Service[generatemealplan.Input, generatemealplan.Result]
	ViewMealPlan     services.Service[viewmealplan.Input, viewmealplan.Result]

	RegisterDevice services.Service[registerdevice.Input, registerdevice.Result]
}

func InitServices(deps *deps.Deps) *Services {
	createReminder := createreminder.New(
		deps.Logger,
		deps.DocumentRepository,
		deps.DispatchRepository,
		deps.DispatchScheduler,
		deps.Now,
	)
	editReminder := editreminder.New(
		deps.Logger,
		deps.DocumentRepository,
		deps.DispatchRepository,
		deps.DispatchScheduler,
		deps.Now,
	)
	listReminders := listreminders.New(deps.Logger, deps.DocumentRepository)
	deleteReminders := deletereminders.New(deps.Logger, deps.DocumentRepository, deps.DispatchRepository)

	scheduleReminders := schedulereminders.New(
		deps.Logger,
		deps.DispatchRepository,
		deps.DispatchScheduler,
		deps.Now,
	)
	sendNotification := sendnotification.New(
		deps.Logger,
		deps.DocumentRepository,
		deps.DispatchRepository,
		deps.RecipientRepository,
		deps.NotificationSender,
		deps.Now,
	)

	generateMealPlan := generatemealplan.New(
		deps.Logger,
		deps.MealPlanGenerator,
		deps.MealPlanRepository,
	)
	if !deps.Config.IsTestMode {
		generateMealPlan = ratelimiting.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: deps.Config.MealPlanRateLimitPerHour},
			generateMealPlan,
		)
	}
	viewMealPlan := viewmealplan.New(deps.Logger, deps.MealPlanRepository)

	registerDevice := registerdevice.New(deps.Logger, deps.RecipientRepository)

	return &Services{
		CreateReminder:    createReminder,
		EditReminder:      editReminder,
		ListReminders:     listReminders,
		DeleteReminders:   deleteReminders,
		ScheduleReminders: scheduleReminders,
		SendNotification:  sendNotification,
		GenerateMealPlan:  generateMealPlan,
		ViewMealPlan:      viewMealPlan,
		RegisterDevice:    registerDevice,
	}
}
