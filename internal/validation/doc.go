// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

// Package validation wraps go-playground/validator v10 behind a thread-safe
// singleton with custom validators and user-friendly error messages. It
// integrates with the application's API error format for consistent error
// responses.
//
// # Custom Tags
//
// Beyond the built-in tags, this package registers:
//   - costtier: value must be one of low, medium, high (case-insensitive)
//   - indianregion: value must be one of the six regional groupings
//     (north, south, east, west, northeast, central, case-insensitive)
//
// # Quick Start
//
//	type SaveProfileRequest struct {
//	    Name            string   `validate:"required,min=1,max=100"`
//	    MaxCrowdLevel   int      `validate:"gte=0,lte=100"`
//	    CostSensitivity float64  `validate:"gte=0"`
//	    Regions         []string `validate:"dive,indianregion"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
package validation
