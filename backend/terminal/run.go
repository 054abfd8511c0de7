package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/shapes"
)

// Run draws scene through r and feeds key events from r's screen to a
// shapes.Controller until a quit key, ctx cancellation or the screen
// shutting down. Every event is followed by one redraw.
func Run(ctx context.Context, r *Renderer, scene *shapes.Scene) error {
	if r.screen == nil {
		return fmt.Errorf("terminal: renderer has no screen")
	}
	ctrl := shapes.NewController(scene)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go r.screen.ChannelEvents(events, quit)

	redraw(r, scene)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if IsQuit(ev) {
					return nil
				}
				if key, ok := KeyFromEvent(ev); ok {
					if _, err := ctrl.HandleKey(key, shapes.KeyPress); err != nil {
						shapes.Logger().Warn("terminal: key handling failed", "key", uint16(key), "err", err)
					}
				}
			case *tcell.EventResize:
				r.screen.Sync()
			}
			redraw(r, scene)
		}
	}
}

func redraw(r *Renderer, scene *shapes.Scene) {
	r.SetCaption(Caption(scene))
	if err := scene.Draw(); err != nil {
		shapes.Logger().Warn("terminal: draw failed", "err", err)
	}
}

// Caption describes the scene and the keys that change it.
func Caption(scene *shapes.Scene) string {
	return fmt.Sprintf(" %s %s  [a b c] [1-6] [q] ", scene.Family(), scene.Level())
}
