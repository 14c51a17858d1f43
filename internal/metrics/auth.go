package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalAuthAttempts = "total_auth_attempts"
	LabelKind             = "kind"
	LabelResult           = "result"
)

const (
	KindRegister = "register"
	KindLogin    = "login"

	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var TotalAuthAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalAuthAttempts,
		Help:      "Total registration and login attempts",
		Namespace: Namespace,
	},
	[]string{LabelKind, LabelResult},
)
