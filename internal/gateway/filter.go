package gateway

import "net/http"

// Phase says when a filter runs relative to routing.
type Phase int

const (
	PhasePre Phase = iota
	PhasePost
)

// ShortCircuit is a response produced by a filter in place of the
// routed handler.
type ShortCircuit struct {
	Status int
	Body   []byte
}

// Result of one filter execution. A nil Response passes Request
// (possibly rewritten) down the chain; a non-nil Response halts it.
type Result struct {
	Request  *http.Request
	Response *ShortCircuit
}

func Pass(r *http.Request) Result {
	return Result{Request: r}
}

func Halt(status int, body []byte) Result {
	return Result{Response: &ShortCircuit{Status: status, Body: body}}
}

// Filter is one unit of the gateway interception chain. Applies decides
// participation per request; Order sorts ascending within a phase.
type Filter interface {
	Applies(r *http.Request) bool
	Execute(r *http.Request) Result
	Order() int
	Phase() Phase
}
