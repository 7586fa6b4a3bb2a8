package config

// overrides environment values with non-empty command line flags
func (c *Config) ApplyFlags(flags Flags) error {
	if flags.Addr != "" {
		c.Addr = flags.Addr
	}

	if flags.Port != "" {
		if err := validatePort(flags.Port); err != nil {
			return err
		}
		c.Port = flags.Port
	}

	return nil
}
