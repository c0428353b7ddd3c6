package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlayersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_players_created_total",
		Help: "The total number of player accounts created on first contact",
	})
	BattlesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_battles_created_total",
		Help: "The total number of battles created",
	})
	BattlesJoinedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_battles_joined_total",
		Help: "The total number of successful battle joins",
	})
	BattlesCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_battles_cancelled_total",
		Help: "The total number of waiting battles cancelled by their creator",
	})
	BattlesSweptTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arena_battles_swept_total",
		Help: "The total number of stale waiting battles removed by the sweeper",
	})
)
