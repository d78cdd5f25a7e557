// Package services implements the core business logic: lexical scoring,
// metadata indexing, relevance selection, content loading, context
// budgeting and question answering. Services depend only on domain
// types and ports, never on concrete adapters.
package services
