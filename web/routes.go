package web

import (
	"net/http"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"gostyles/component"
	"gostyles/views"
	"gostyles/web/api"
	"gostyles/web/pages/demo"
)

// setupRoutes configures all application routes
func setupRoutes(s *Server) {
	base := demo.Variant{
		Palette: s.Config.Demo.Palette,
		Style:   s.Config.Demo.Style,
		Size:    s.Config.Demo.Size,
		Fixed:   s.Config.Demo.Fixed,
	}

	s.Get("/", func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")

		sess := s.Registry.Session(sessionOf(ctx))
		shell, err := demo.Load(sess, base, component.Options{})
		if err != nil {
			logger.LogErr(err, "failed to load demo shell")
			ctx.SetStatus(http.StatusInternalServerError)
			return ctx.WriteHTML(views.SimpleLayout("Error", views.Message{Title: "Something went wrong", Text: "The page could not be built."}))
		}

		query := func(key string) string { return ctx.Request().QueryParam(key) }
		v, err := demo.ParseVariant(query, shell.Variant())
		if err != nil {
			ctx.SetStatus(http.StatusBadRequest)
			return ctx.WriteHTML(views.SimpleLayout("Bad request", views.Message{Title: "Unknown variant", Text: err.Error()}))
		}
		if _, err := shell.Apply(v); err != nil {
			ctx.SetStatus(http.StatusBadRequest)
			return ctx.WriteHTML(views.SimpleLayout("Bad request", views.Message{Title: "Unknown variant", Text: err.Error()}))
		}

		return ctx.WriteHTML(shell.Render(v))
	})

	// Health check endpoint
	s.Get("/health", func(ctx rweb.Context) error {
		return ctx.WriteJSON(map[string]interface{}{
			"status":   "ok",
			"sessions": s.Registry.Len(),
		})
	})

	// Component event and state endpoints
	components := api.Components{Registry: s.Registry}
	s.Post(component.DefaultEndpoint+"/:instance/events", components.PostEvent)
	s.Get(component.DefaultEndpoint+"/:instance/state", components.GetState)
}

func sessionOf(ctx rweb.Context) string {
	id, _ := ctx.Get(api.SessionKey).(string)
	return id
}
