// Package domain contains the core entities of the study buddy service:
// uploaded documents and their retrievable chunks, conversations and their
// messages. The types are free of infrastructure concerns so they can be
// shared across storage, services and handlers.
package domain
