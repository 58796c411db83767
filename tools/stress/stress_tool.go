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

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/codenotary/dequebuf/container"
	"github.com/codenotary/dequebuf/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	opCount := flag.Int("opCount", 1_000_000, "number of operations to run")
	pushRatio := flag.Float64("pushRatio", 0.6, "fraction of operations that push (rest pop)")
	bottomRatio := flag.Float64("bottomRatio", 0.05, "fraction of operations addressed to the bottom end")
	vLen := flag.Int("vLen", 32, "value length (bytes)")
	seed := flag.Int64("seed", 0, "random seed (0 means time-based)")
	printAfter := flag.Int("printAfter", 10_000, "print a dot '.' after specified number of operations")
	sectionEvery := flag.Int("sectionEvery", 0, "reserve and fill a top section window every n operations (0 disables)")
	sectionLen := flag.Int("sectionLen", 8, "section window length")
	metricsAddr := flag.String("metricsAddr", "", "address to serve prometheus metrics on (empty disables)")

	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))

	b := container.New[[]byte]()

	if *metricsAddr != "" {
		b.WithMetrics(metrics.NewPrometheusBufferMetrics())

		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())

			fmt.Printf("Serving metrics at http://%s/metrics\n", *metricsAddr)

			err := http.ListenAndServe(*metricsAddr, mux)
			if err != nil {
				fmt.Printf("Metrics server error: %v\n", err)
			}
		}()
	}

	fmt.Printf("Running %d operations (seed %d)...\n", *opCount, *seed)

	var pushes, pops, bottomOps, sections int
	maxLen := 0

	start := time.Now()

	for op := 1; op <= *opCount; op++ {
		bottom := rnd.Float64() < *bottomRatio

		if b.Empty() || rnd.Float64() < *pushRatio {
			v := make([]byte, *vLen)
			rnd.Read(v)

			if bottom {
				b.PushBottom(v)
			} else {
				b.PushTop(v)
			}
			pushes++
		} else {
			if bottom {
				b.PopBottom()
			} else {
				b.PopTop()
			}
			pops++
		}

		if bottom {
			bottomOps++
		}

		if b.Len() > maxLen {
			maxLen = b.Len()
		}

		if *sectionEvery > 0 && op%*sectionEvery == 0 {
			s, err := b.SectionAtTop(*sectionLen)
			if err == nil {
				for i := 0; i < s.Len(); i++ {
					v := make([]byte, *vLen)
					rnd.Read(v)
					s.Set(i, v)
				}
				sections++
			}
		}

		if op%*printAfter == 0 {
			fmt.Print(".")
		}
	}

	elapsed := time.Since(start)

	fmt.Printf("\nDone in %v (%.0f ops/s)\n", elapsed, float64(*opCount)/elapsed.Seconds())
	fmt.Printf("pushes: %d, pops: %d, bottom ops: %d, section windows: %d\n", pushes, pops, bottomOps, sections)
	fmt.Printf("final len: %d, max len: %d, capacity: %d\n", b.Len(), maxLen, b.Cap())
}
