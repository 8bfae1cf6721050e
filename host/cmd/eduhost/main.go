// Command eduhost is a PC-side REPL for talking to the firmware's command
// protocol over a serial link.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Coolman4128/EduFirmware/host/serial"
	"github.com/Coolman4128/EduFirmware/protocol"
)

var (
	device = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate")
)

func main() {
	flag.Parse()

	fmt.Println("eduhost - firmware command console")
	fmt.Println("===================================")

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to open %s: %v\n", *device, err)
		os.Exit(1)
	}
	defer port.Close()

	tc := protocol.NewTransceiver(port)
	fmt.Printf("connected to %s at %d baud\n", *device, *baud)
	fmt.Println("type 'help' for available commands, 'quit' to exit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			fmt.Println("goodbye")
			return
		case "help", "?":
			printHelp()
		case "read":
			runCommand(tc, fields, protocol.ReadRegister, 1)
		case "write":
			runCommand(tc, fields, protocol.WriteRegister, 2)
		case "hwconfig":
			runCommand(tc, fields, protocol.ReadHwConfig, 1)
		case "configure":
			runCommand(tc, fields, protocol.ConfigureHw, 2)
		case "link":
			runCommand(tc, fields, protocol.LinkHw, 2)
		case "unlink":
			runCommand(tc, fields, protocol.RemoveLinkHw, 1)
		default:
			fmt.Printf("unknown command: %s (type 'help' for available commands)\n", fields[0])
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}
}

// runCommand parses wantArgs positional numeric arguments from fields[1:]
// (address, then optionally data), sends the matching request, and prints
// the decoded response.
func runCommand(tc *protocol.Transceiver, fields []string, cmd protocol.Command, wantArgs int) {
	if len(fields)-1 < wantArgs {
		fmt.Printf("usage: %s <address>%s\n", fields[0], map[bool]string{true: " <data>", false: ""}[wantArgs == 2])
		return
	}

	address, err := parseUint16(fields[1])
	if err != nil {
		fmt.Printf("invalid address: %v\n", err)
		return
	}

	var data uint16
	if wantArgs == 2 {
		data, err = parseUint16(fields[2])
		if err != nil {
			fmt.Printf("invalid data: %v\n", err)
			return
		}
	}

	req := protocol.Packet{Command: cmd, Address: address, Data: data}
	if err := tc.WritePacket(req); err != nil {
		fmt.Printf("write failed: %v\n", err)
		return
	}

	resp, err := tc.ReadPacket()
	if err != nil {
		fmt.Printf("read failed: %v\n", err)
		return
	}

	fmt.Printf("response: address=%d data=%#04x\n", resp.Address, resp.Data)
}

func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func printHelp() {
	fmt.Println()
	fmt.Println("available commands:")
	fmt.Println("  read <addr>               - read a register")
	fmt.Println("  write <addr> <value>      - write a register")
	fmt.Println("  hwconfig <hwid>           - read a peripheral's type/mode (0 = device count)")
	fmt.Println("  configure <hwid> <mode>   - reconfigure a GPIO's mode")
	fmt.Println("  link <hwid> <addr>        - link a peripheral to a register")
	fmt.Println("  unlink <hwid>             - remove a peripheral's link")
	fmt.Println("  quit/exit/q               - exit the program")
	fmt.Println()
}
