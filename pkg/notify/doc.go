// Package notify composes ready-to-deliver notification values from resolved
// templates and user settings.
//
// The package owns the notification domain enums (type, duration, position)
// that the settings package validates against, and a Service that turns a
// template key plus substitution parameters into a Notification envelope in
// the configured language. How a notification is actually displayed is left
// to the caller.
//
//	resolver, _ := templates.New(source)
//	svc, _ := notify.NewService(resolver, notify.Config{
//		Enabled:  true,
//		Language: "ko",
//	})
//
//	n, err := svc.Build(ctx, "tool_completed", map[string]string{"name": "build"})
package notify
