package transport

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"
)

type TLSOptions struct {
	CACertPath string `yaml:"ca_cert"`
	CertPath   string `yaml:"cert"`
	KeyPath    string `yaml:"key"`
	VerifyPeer bool   `yaml:"verify_peer"`
}

func (t *TLSOptions) dial(addr string, serverName string) (net.Conn, error) {
	cfg := &tls.Config{
		ServerName:         serverName,
		InsecureSkipVerify: !t.VerifyPeer,
	}

	if t.CACertPath != "" {
		pem, err := os.ReadFile(t.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed reading CA cert: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no usable certificates in %s", t.CACertPath)
		}
		cfg.RootCAs = pool
	}

	if t.CertPath != "" {
		cert, err := tls.LoadX509KeyPair(t.CertPath, t.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed loading client keypair: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	conn, err := tls.Dial("tcp", addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed dialing graylog at %s: %w", addr, err)
	}
	return conn, nil
}
