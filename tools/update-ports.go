package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
)

const ianaCSV = "https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv"

func main() {

	resp, err := http.Get(ianaCSV)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	tcp := map[int]string{}
	udp := map[int]string{}
	var order []int
	seen := map[int]bool{}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			panic(err)
		}

		if len(record) < 3 || record[0] == "" || record[1] == "" {
			continue
		}

		// ranges such as "6000-6063" are skipped
		port, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}

		var table map[int]string
		switch record[2] {
		case "tcp":
			table = tcp
		case "udp":
			table = udp
		default:
			continue
		}

		// first registration wins
		if _, exists := table[port]; exists {
			continue
		}
		table[port] = record[0]

		if !seen[port] {
			seen[port] = true
			order = append(order, port)
		}
	}

	output, err := os.Create("./scan/known.go")
	if err != nil {
		panic(err)
	}
	defer output.Close()

	fmt.Fprint(output, "package scan\n")
	writeTable(output, "knownTCPPorts", order, tcp)
	writeTable(output, "knownUDPPorts", order, udp)
}

func writeTable(w io.Writer, name string, order []int, table map[int]string) {
	fmt.Fprintf(w, "\n// data from %s\nvar %s = map[int]string{", ianaCSV, name)
	for _, port := range order {
		if service, ok := table[port]; ok {
			fmt.Fprintf(w, "\n\t%d: %q,", port, service)
		}
	}
	fmt.Fprint(w, "\n}\n")
}
