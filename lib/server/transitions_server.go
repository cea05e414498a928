package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/trendmap/lib/view"
)

func (s *server) initTransitions(r *gin.Engine) {
	r.GET("/api/slide", getP[SlideParams](s.slide))
	r.GET("/api/toggle", getP[ToggleParams](s.toggle))
}

func (s *server) slide(params *SlideParams) (any, error) {
	if params.Pos == nil {
		return nil, badRequest("missing pos")
	}

	state, err := view.Decode(s.ds, params.Params)
	if err != nil {
		return nil, err
	}

	return s.toState(state.Slide(s.ds, *params.Pos)), nil
}

func (s *server) toggle(params *ToggleParams) (any, error) {
	if params.Key == "" {
		return nil, badRequest("missing key")
	}

	state, err := view.Decode(s.ds, params.Params)
	if err != nil {
		return nil, err
	}

	return s.toState(state.Toggle(params.Key)), nil
}

func (s *server) toState(state view.State) *stateResponse {
	return &stateResponse{
		Month:  state.Month(s.ds),
		Params: view.Encode(state),
	}
}
