// Copyright (c) 2026 The Forge developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import "net/http"

// noopMetrics implements a no-operation metrics service.
type noopMetrics struct{}

func (n *noopMetrics) GetOrCreateCountMeter(string) CountMeter                  { return noopMeter{} }
func (n *noopMetrics) GetOrCreateCountVecMeter(string, []string) CountVecMeter  { return noopMeter{} }
func (n *noopMetrics) GetOrCreateGaugeMeter(string) GaugeMeter                  { return noopMeter{} }
func (n *noopMetrics) GetOrCreateHistogramMeter(string, []int64) HistogramMeter { return noopMeter{} }
func (n *noopMetrics) GetOrCreateHandler() http.Handler                         { return nil }

type noopMeter struct{}

func (noopMeter) Add(int64)                             {}
func (noopMeter) AddWithLabel(int64, map[string]string) {}
func (noopMeter) Set(int64)                             {}
func (noopMeter) Observe(int64)                         {}
