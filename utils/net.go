package utils

import (
	"fmt"
	"net"
)

// GetIP returns the first running non-loopback IPv4 address, or localhost
// and a hint when the machine is offline.
func GetIP() (string, string) {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagRunning == 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if ok &&
				!ipNet.IP.IsLoopback() &&
				ipNet.IP.To4() != nil {
				return ipNet.IP.String(), ""
			}
		}
	}
	return "localhost", "(offline)"
}

// GetFreePort returns the first port at or above port that can be bound,
// trying at most tries ports.
func GetFreePort(port, tries int) (int, error) {
	for i := 0; i < tries; i++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port+i))
		if err == nil {
			ln.Close()
			return port + i, nil
		}
	}
	return 0, fmt.Errorf("no free port in %d-%d", port, port+tries-1)
}
