package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalTaskOperations = "total_task_operations"
	NameTotalCompletedTasks = "total_completed_tasks"
	LabelOperation          = "operation"
)

const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

var TotalTaskOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTotalTaskOperations,
		Help:      "Total task operations",
		Namespace: Namespace,
	},
	[]string{LabelOperation},
)

var TotalCompletedTasks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalCompletedTasks,
		Help:      "Total tasks marked as completed",
		Namespace: Namespace,
	},
)
