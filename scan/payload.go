package scan

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

var ErrUnknownPayload = errors.New("unknown udp payload")

// DNSQueryPayload builds a recursive DNS A query for name. Name servers ignore
// arbitrary bytes but answer a well-formed query, which turns an otherwise
// open|filtered port 53 into an open one.
func DNSQueryPayload(name string) ([]byte, error) {
	dns := &layers.DNS{
		ID:     uint16(rand.Intn(0xffff)),
		OpCode: layers.DNSOpCodeQuery,
		RD:     true,
		Questions: []layers.DNSQuestion{
			{
				Name:  []byte(name),
				Type:  layers.DNSTypeA,
				Class: layers.DNSClassIN,
			},
		},
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, dns); err != nil {
		return nil, fmt.Errorf("failed to build dns query: %w", err)
	}
	return buf.Bytes(), nil
}

// UDPPayload resolves a payload name as accepted on the command line: "raw"
// (or empty) for the default datagram, "dns" for a DNS query.
func UDPPayload(kind string) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "raw":
		return DefaultUDPPayload(), nil
	case "dns":
		return DNSQueryPayload(string(defaultUDPPayload))
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownPayload, kind)
}
