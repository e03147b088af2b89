// Copyright 2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package healthcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

var (
	ErrStatus = errors.New("status code is invalid")
)

// Ping notifies an external liveness monitor (e.g. a healthchecks.io check
// URL) that the service is up.
func Ping(url string) error {
	client := resty.New()
	resp, err := client.R().Get(url)
	if err != nil {
		return err
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode())
	}

	return nil
}

// Run pings the monitor on the given interval until ctx is cancelled. Ping
// failures are logged and retried on the next tick; they never stop the
// loop or the service.
func Run(ctx context.Context, url string, interval time.Duration) {
	if err := Ping(url); err != nil {
		log.Warn().Err(err).Str("URL", url).Msg("healthcheck ping failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := Ping(url); err != nil {
				log.Warn().Err(err).Str("URL", url).Msg("healthcheck ping failed")
			}
		}
	}
}
