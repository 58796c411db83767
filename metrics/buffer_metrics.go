/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type BufferMetrics interface {
	IncGrowths()
	SetCapacity(n int)
	SetLen(n int)
}

var (
	metricsBufferGrowths = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dequebuf_buffer_growths_total",
		Help: "Number of capacity-doubling reallocations",
	})

	metricsBufferCapacity = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dequebuf_buffer_capacity",
		Help: "Allocated slot count",
	})

	metricsBufferLen = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dequebuf_buffer_len",
		Help: "Occupied slot count",
	})
)

var _ BufferMetrics = &prometheusBufferMetrics{}
var _ BufferMetrics = &nopBufferMetrics{}

type prometheusBufferMetrics struct {
}

func NewPrometheusBufferMetrics() BufferMetrics {
	return &prometheusBufferMetrics{}
}

func (m *prometheusBufferMetrics) IncGrowths() {
	metricsBufferGrowths.Inc()
}

func (m *prometheusBufferMetrics) SetCapacity(n int) {
	metricsBufferCapacity.Set(float64(n))
}

func (m *prometheusBufferMetrics) SetLen(n int) {
	metricsBufferLen.Set(float64(n))
}

type nopBufferMetrics struct {
}

func NewNopBufferMetrics() BufferMetrics {
	return &nopBufferMetrics{}
}

func (m *nopBufferMetrics) IncGrowths() {

}

func (m *nopBufferMetrics) SetCapacity(n int) {

}

func (m *nopBufferMetrics) SetLen(n int) {

}
