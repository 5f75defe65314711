// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

/*
Package reference bakes the static governance reference data into the
binary with the Go embed package. Scores must be reproducible for
compliance evidence, so the lifecycle table and the framework keyword
table travel with the executable and cannot drift on the host filesystem
without a rebuild. The govhealth CLI can fingerprint these bytes
(`govhealth reference verify`) to prove which rule version a binary runs.
*/
package reference

import (
	_ "embed"
)

// LifecycleTable holds the raw byte content of lifecycle_reference.yaml:
// the versioned technology lifecycle lookup (statuses per release, name
// aliases) consumed by the lifecycle risk scorer.
//
//go:embed lifecycle_reference.yaml
var LifecycleTable []byte

// FrameworkKeywords holds the raw byte content of framework_keywords.yaml:
// the framework-to-keyword associations used by the audit forecast to
// scope findings to one scheduled audit.
//
//go:embed framework_keywords.yaml
var FrameworkKeywords []byte
