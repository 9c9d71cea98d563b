// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pkginfo holds program identity set at build time via ldflags.
package pkginfo

var (
	ProgramName = "ffapi"
	Version     = "1.0.0-dev"

	// CommitHash contains the current Git revision; set by the build.
	CommitHash string

	// BuildDate contains the date of the current build.
	BuildDate string
)
