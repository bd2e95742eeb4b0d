// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package board

import "github.com/forgeboard/forge/metrics"

var (
	metricQuestsCreated = metrics.LazyLoadCounter("quests_created_total")
	metricVotesCast     = metrics.LazyLoadCounter("votes_cast_total")
	metricDistributions = metrics.LazyLoadCounter("rewards_distributed_total")
)
