package config

func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}
