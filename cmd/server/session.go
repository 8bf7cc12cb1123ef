package main

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/coder/websocket"

	fractal "github.com/marben/fractal_render"
)

// session is the per-connection view state: the current surface size and
// the workgroup plan computed for it. Events are handled one at a time on
// the read loop, so size and plan never race with each other; in-flight
// passes carry their own immutable copy.
type session struct {
	conn       *websocket.Conn
	coord      *fractal.Coordinator
	capability fractal.Capability

	size fractal.SurfaceSize
	plan fractal.WorkgroupPlan

	writeMu sync.Mutex // frames are written from pass goroutines
}

// runSession reads viewer events until the connection drops and streams
// completed frames back.
func runSession(ctx context.Context, conn *websocket.Conn, capability fractal.Capability, workers int) {
	s := &session{
		conn:       conn,
		coord:      fractal.NewCoordinator(workers),
		capability: capability,
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			log.Printf("session read: %v", err)
			return
		}
		if typ != websocket.MessageText {
			continue
		}

		var ev fractal.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			log.Printf("bad event: %v", err)
			continue
		}
		s.handle(ctx, ev)
	}
}

func (s *session) handle(ctx context.Context, ev fractal.Event) {
	switch ev.Kind {
	case fractal.EventResize:
		s.size = fractal.SurfaceSize{Width: ev.Width, Height: ev.Height}
		s.plan = fractal.PlanWorkgroups(s.size, s.capability)
		s.submit(ctx, fractal.MandelbrotParams())
	case fractal.EventDown, fractal.EventDrag:
		c := fractal.ShiftedPlanePoint(ev.X, ev.Y, s.size, fractal.DefaultShiftX)
		s.submit(ctx, fractal.JuliaParams(c))
	case fractal.EventUp:
		s.submit(ctx, fractal.MandelbrotParams())
	default:
		log.Printf("unknown event kind %q", ev.Kind)
	}
}

// submit hands the pass to the coordinator; refused passes (zero-area
// surface, drag backpressure) are dropped silently and superseded by the
// next event.
func (s *session) submit(ctx context.Context, params fractal.RenderParameters) {
	pass := fractal.Pass{Plan: s.plan, Size: s.size, Params: params}
	s.coord.Submit(pass, func(surf *fractal.Surface) {
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		if err := s.conn.Write(ctx, websocket.MessageBinary, fractal.EncodeFrame(surf)); err != nil {
			log.Printf("frame write: %v", err)
		}
	})
}
