package model

// Package model defines domain data structures used across the app: model
// documents and their configuration tree, the fixed style catalog, and batch
// task/status types. Structures are designed for direct binding in the UI and
// explicit state transitions.
