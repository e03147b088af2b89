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
package data

import "time"

// Source is a row of the dim_source dimension table; one row per upstream
// data vendor (e.g. "yfinance").
type Source struct {
	SourceKey int64      `db:"source_key"`
	Name      string     `db:"nk_name"`
	LoadTS    *time.Time `db:"load_ts"`
}

type SourceOut struct {
	SourceKey int64  `json:"source_key"`
	Name      string `json:"name"`
}

func (s *Source) ToAPI() SourceOut {
	return SourceOut{SourceKey: s.SourceKey, Name: s.Name}
}
