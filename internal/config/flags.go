package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// headerFlags collects repeated -H "Name: value" flags.
// It implements the flag.Value interface.
type headerFlags map[string]string

// ParseFlags parses the process command line.
//
// Flags:
//
//	-e/-email account email
//	-p/-password account password
//	-country country code (nl, be)
//	-base-url API base URL template, "{country}" is substituted
//	-H extra request header "Name: value", repeatable
//	-debug log every request and response
//	-request-timeout API request timeout (e.g., "10s")
//	-a HTTP server address in format [host]:[port]
//	-server-request-timeout HTTP server request timeout (e.g., "30s")
//	-watch refresh interval (e.g., "15m")
//	-json print the result as JSON
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var email, password, country, baseURL string
	var headers = headerFlags{}
	var debug, jsonOutput bool
	var requestTimeout, serverRequestTimeout, watch time.Duration
	var serverAddress NetAddress
	var jsonConfigPath string

	fs := flag.NewFlagSet("youfone", flag.ContinueOnError)
	fs.StringVar(&email, "e", "", "Account email")
	fs.StringVar(&email, "email", "", "Account email (alias)")
	fs.StringVar(&password, "p", "", "Account password")
	fs.StringVar(&password, "password", "", "Account password (alias)")
	fs.StringVar(&country, "country", "", "Country code: nl or be")
	fs.StringVar(&baseURL, "base-url", "", "API base URL template")
	fs.Var(&headers, "H", "Extra request header `Name: value` (repeatable)")
	fs.BoolVar(&debug, "debug", false, "Log every request and response")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 10s)")
	fs.Var(&serverAddress, "a", "HTTP server address host:port")
	fs.DurationVar(&serverRequestTimeout, "server-request-timeout", 0, "HTTP server request timeout (e.g., 30s)")
	fs.DurationVar(&watch, "watch", 0, "Refresh interval (e.g., 15m)")
	fs.BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		Youfone: Youfone{
			Email:          email,
			Password:       password,
			Country:        country,
			BaseURL:        baseURL,
			Debug:          debug,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverRequestTimeout,
		},
		Workers:      Workers{RefreshInterval: watch},
		Output:       Output{JSON: jsonOutput},
		JSONFilePath: jsonConfigPath,
	}
	if len(headers) > 0 {
		cfg.Youfone.Headers = headers
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any host other than "localhost" must be
// an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func (h *headerFlags) String() string {
	if h == nil || len(*h) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(*h))
	for k, v := range *h {
		pairs = append(pairs, k+": "+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ", ")
}

func (h *headerFlags) Set(s string) error {
	name, value, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("need header in a form `Name: value`, got %q", s)
	}

	if *h == nil {
		*h = headerFlags{}
	}
	(*h)[name] = strings.TrimSpace(value)
	return nil
}
