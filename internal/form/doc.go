// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form coordinates validation of one signup form instance.
//
// A [Coordinator] owns the current field values, the touched map and the
// error map. Presentation code feeds it keystrokes ([Coordinator.SetValue]),
// blur events ([Coordinator.OnBlur]) and submit attempts
// ([Coordinator.OnSubmit]) and renders [Coordinator.VisibleError] under each
// input. Errors are always recomputed from the current values; nothing is
// accumulated across events.
//
// A Coordinator belongs to a single form and is not safe for concurrent use.
package form
