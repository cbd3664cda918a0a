package asana

// Client is the root of the API surface. It wires one shared dispatcher into
// the per-resource services; the services hold a non-owning reference to it
// and never mutate it.
type Client struct {
	Dispatcher *Dispatcher

	Tasks      *Tasks
	Projects   *Projects
	Tags       *Tags
	Workspaces *Workspaces
	Users      *Users
	Stories    *Stories
}

// NewClient creates a client from cfg.
func NewClient(cfg *Config) (*Client, error) {
	d, err := NewDispatcher(cfg)
	if err != nil {
		return nil, err
	}
	return NewClientWithDispatcher(d), nil
}

// NewClientWithDispatcher creates a client around an existing dispatcher.
// Useful for sharing one dispatcher between clients or injecting a test
// double's transport.
func NewClientWithDispatcher(d *Dispatcher) *Client {
	return &Client{
		Dispatcher: d,
		Tasks:      &Tasks{dispatcher: d},
		Projects:   &Projects{dispatcher: d},
		Tags:       &Tags{dispatcher: d},
		Workspaces: &Workspaces{dispatcher: d},
		Users:      &Users{dispatcher: d},
		Stories:    &Stories{dispatcher: d},
	}
}
