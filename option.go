package registry

type (
	//Options control per registration behavior.
	Options struct {
		instance interface{}
		owner    bool
	}

	//Option modifies registration options.
	Option func(o *Options)
)

// NewOptions creates registration options; entries own their instance unless
// WithoutOwnership is supplied.
func NewOptions(options ...Option) *Options {
	ret := &Options{owner: true}
	for _, item := range options {
		item(ret)
	}
	return ret
}

// WithInstance registers an externally created instance instead of relying
// on lazy construction.
func WithInstance(instance interface{}) Option {
	return func(o *Options) {
		o.instance = instance
	}
}

// WithoutOwnership keeps the registry from destroying the instance on
// removal; the entry only holds a reference supplied externally.
func WithoutOwnership() Option {
	return func(o *Options) {
		o.owner = false
	}
}

func (o *Options) GetInstance() interface{} {
	return o.instance
}

func (o *Options) IsOwner() bool {
	return o.owner
}
