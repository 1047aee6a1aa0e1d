// Copyright 2026 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AssetTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "brandguard_asset_transitions_total",
	Help: "Number of successful asset state transitions by transition method",
}, []string{"method"})

var AssetVersionTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "brandguard_asset_version_transitions_total",
	Help: "Number of successful asset version state transitions by transition method",
}, []string{"method"})

var RejectedTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "brandguard_rejected_transitions_total",
	Help: "Number of transition attempts rejected by a guard",
}, []string{"method"})

var VersionUploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "brandguard_version_uploads_total",
	Help: "Number of asset version files accepted for storage",
})
