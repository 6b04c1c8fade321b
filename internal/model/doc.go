package model

// Package model defines the domain data structures of the browser shell: the
// tab/session state, download records, and status enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
