package claude

// Chunk is one streamed piece of a collaborator response. Two shapes exist:
// recognized assistant text, and opaque protocol lines preserved verbatim.
// Consumers concatenate the Content projection of every chunk.
type Chunk interface {
	Content() string
}

// TextChunk is assistant-authored text.
type TextChunk struct {
	Text string
}

func (c TextChunk) Content() string {
	return c.Text
}

// OpaqueChunk is a well-formed protocol line whose shape the client does not
// recognize. Its content projection is the raw line.
type OpaqueChunk struct {
	Raw string
}

func (c OpaqueChunk) Content() string {
	return c.Raw
}
