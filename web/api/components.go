package api

import (
	"net/http"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"gostyles/component"
	"gostyles/event"
)

// Update is the new markup of one instance, to be swapped in by root id.
type Update struct {
	Instance string `json:"instance"`
	ID       string `json:"id"`
	HTML     string `json:"html"`
}

// EventResult is returned by PostEvent.
type EventResult struct {
	Adapted  string   `json:"adapted"`
	Rerender bool     `json:"rerender"`
	Updates  []Update `json:"updates"`
}

// Components serves the component endpoints for the sessions in Registry.
type Components struct {
	Registry *component.Registry
}

// PostEvent handles POST /api/v1/components/:instance/events
// The body is an event envelope, JSON by default or msgpack when the
// X-Event-Encoding header says so.
//
// Success (200):
//
//	{ "success": true, "data": { "adapted": "message", "rerender": true, "updates": [...] } }
//
// 204 when no instance markup changed. A request accepting text/html gets
// the changed fragments concatenated instead of the JSON envelope.
//
// Errors:
//   - 400: Undecodable envelope or missing target
//   - 404: Unknown session or instance
func (h Components) PostEvent(ctx rweb.Context) error {
	inst, sess, ok := h.lookup(ctx)
	if !ok {
		return nil
	}

	env, err := event.Decode(ctx.Request().Body(), ctx.Request().Header(event.EncodingHeader))
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode event"), "instance", inst.Name())
		return writeError(ctx, http.StatusBadRequest, "invalid event envelope")
	}

	res := inst.Handle(env.Target, env.Event())

	// A forwarded event may have changed a sibling, so every instance is checked.
	var updates []Update
	for _, name := range sess.Names() {
		other, ok := sess.Instance(name)
		if !ok {
			continue
		}
		html, delta := other.Markup()
		if !delta.Changed {
			continue
		}
		updates = append(updates, Update{
			Instance: name,
			ID:       component.Scope{Instance: name}.RootID(),
			HTML:     html,
		})
	}

	logger.Debug("Event handled", "instance", inst.Name(), "target", env.Target,
		"kind", env.Kind, "adapted", res.Adapted.String(), "updates", len(updates))

	if len(updates) == 0 {
		ctx.SetStatus(http.StatusNoContent)
		return nil
	}
	if strings.Contains(ctx.Request().Header("Accept"), "text/html") {
		var sb strings.Builder
		for _, u := range updates {
			sb.WriteString(u.HTML)
		}
		return ctx.WriteHTML(sb.String())
	}
	return writeSuccess(ctx, http.StatusOK, EventResult{
		Adapted:  res.Adapted.String(),
		Rerender: res.Rerender,
		Updates:  updates,
	})
}

// GetState handles GET /api/v1/components/:instance/state
// Returns the current state of the instance.
func (h Components) GetState(ctx rweb.Context) error {
	inst, _, ok := h.lookup(ctx)
	if !ok {
		return nil
	}
	return writeSuccess(ctx, http.StatusOK, inst.Snapshot())
}

// lookup resolves the session and instance of the request, writing the
// error response itself when either is missing.
func (h Components) lookup(ctx rweb.Context) (component.Instance, *component.Session, bool) {
	sess, ok := h.Registry.Lookup(sessionID(ctx))
	if !ok {
		_ = writeError(ctx, http.StatusNotFound, "session not found")
		return nil, nil, false
	}

	name := ctx.Request().Param("instance")
	inst, ok := sess.Instance(name)
	if !ok {
		_ = writeError(ctx, http.StatusNotFound, "instance not found: "+name)
		return nil, nil, false
	}
	return inst, sess, true
}
