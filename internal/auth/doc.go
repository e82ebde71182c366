// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package auth provides authentication middleware and token management
// for the admin surface of the API.
//
// Three modes are supported, selected by configuration: "none" leaves
// every route open (the default for a public read-only deployment),
// "basic" validates HTTP Basic credentials against a bcrypt hash, and
// "jwt" validates HS256 bearer tokens issued by the login endpoint.
//
// The package also carries per-IP rate limiting and the security
// header set applied to every response.
package auth
