package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-e endpoint URL the batch is uploaded to
//	-request-timeout upload timeout (e.g. "30s")
//	-camera capture source: synthetic | directory
//	-camera-dir directory replayed by the directory source
//	-width / -height synthetic frame size
//	-quality synthetic frame JPEG quality
//	-o directory saved depth maps are written to
//	-a stub server address in format [host]:[port]
//	-server-timeout stub server request timeout
//	-max-upload stub server body limit in bytes
//	-log-level log level name
//	-log-file client log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("depth-capture", flag.ContinueOnError)

	var serverAddress NetAddress
	var endpoint, cameraSource, cameraDir, outputDir string
	var logLevel, logFile, jsonConfigPath string
	var requestTimeout, serverTimeout time.Duration
	var width, height, quality int
	var maxUpload int64

	fs.StringVar(&endpoint, "e", "", "Upload endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Upload timeout (e.g., 30s)")
	fs.StringVar(&cameraSource, "camera", "", "Capture source: synthetic | directory")
	fs.StringVar(&cameraDir, "camera-dir", "", "Directory replayed by the directory source")
	fs.IntVar(&width, "width", 0, "Synthetic frame width")
	fs.IntVar(&height, "height", 0, "Synthetic frame height")
	fs.IntVar(&quality, "quality", 0, "Synthetic frame JPEG quality")
	fs.StringVar(&outputDir, "o", "", "Output directory for saved depth maps")
	fs.Var(&serverAddress, "a", "Stub server address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Stub server request timeout")
	fs.Int64Var(&maxUpload, "max-upload", 0, "Stub server body limit in bytes")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel, LogFile: logFile},
		Adapter: Adapter{
			Endpoint:       endpoint,
			RequestTimeout: requestTimeout,
		},
		Camera: Camera{
			Source:  cameraSource,
			Dir:     cameraDir,
			Width:   width,
			Height:  height,
			Quality: quality,
		},
		Storage: Storage{OutputDir: outputDir},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
			MaxUploadBytes: maxUpload,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
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
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
