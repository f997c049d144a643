// Package llm provides a provider-neutral abstraction layer for chat-completion APIs.
//
// # Core Concepts
//
//  1. Messages: Message pairs a role (user, assistant, system) with text content.
//     Request carries the system prompt separately from the conversation messages.
//
//  2. Client Interface: Client.Synchronous performs a single non-streaming completion.
//     ModelLister enumerates the models a provider exposes.
//
//  3. Middleware: Middleware hooks decorate a Client with cross-cutting concerns
//     such as LoggingMiddleware, without modifying provider implementations.
//
//  4. Errors: Error distinguishes configuration problems raised before any
//     network call from upstream (non-success HTTP) responses, network failures
//     and undecodable bodies.
//
// Usage Example
//
//	base, err := openai.NewOpenAIClient(openai.ClientConfig{APIKey: key}, logger)
//	if err != nil {
//	    return err
//	}
//	client := llm.WrapWithMiddleware(base, llm.NewLoggingMiddleware(logger))
//
//	resp, err := client.Synchronous(ctx, &llm.Request{
//	    Model:    "gpt-4o-mini",
//	    System:   "You are a code reviewer.",
//	    Messages: []llm.Message{llm.NewTextMessage(llm.RoleUser, "Review this")},
//	})
package llm
