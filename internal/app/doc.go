// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Services validate inputs, drive the repository through the store ports and
// log failures. Both inbound facades (REST and GraphQL) call the same services.
package app
