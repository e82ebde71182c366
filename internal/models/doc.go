// Dharohar - Indian Cultural Heritage Atlas and Tourism Analytics
// Copyright 2026 The Dharohar Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dharohar-project/dharohar

/*
Package models defines data structures for the Dharohar application.

This package contains all data models used throughout the application,
including catalog records, visitor preferences, recommendation results,
dataset rows for tourism analytics, and API request/response structures.
It serves as the single source of truth for data structure definitions.

Model Categories:

 1. Catalog Models:
    - Site: A cultural heritage site with popularity, crowd, and cost attributes
    - CostTier: Enumeration of entry cost bands (low, medium, high)
    - CatalogStats: Aggregate statistics over the loaded catalog

 2. Preference and Recommendation Models:
    - Preference: Visitor constraints and sensitivities used for ranking
    - Profile: A named, persisted preference set
    - Recommendation: A site paired with its computed score
    - RecommendationResult: Ranked output with fallback metadata

 3. Dataset Models:
    - ArtForm: Traditional art form with location and visitor volume
    - HiddenGem: Lesser-known destination with accessibility metadata
    - Initiative: Government or community heritage preservation program
    - TourismRecord: Yearly per-state tourism statistics row

 4. API Models:
    - APIResponse: Standardized response wrapper
    - APIError: Structured error details
    - Metadata: Response metadata (timestamp, query time, cache state)

Thread Safety:

All models are plain data structures with no internal synchronization.
They are safe for concurrent reads after construction; callers must not
mutate shared instances.

JSON Marshaling:

All models use snake_case JSON tags with omitempty for optional fields.
Time values use RFC3339 format.

See Also:

  - internal/catalog: Loading and snapshotting of these models
  - internal/ranking: Scoring logic consuming Site and Preference
  - internal/database: Tourism analytics queries producing result rows
*/
package models
