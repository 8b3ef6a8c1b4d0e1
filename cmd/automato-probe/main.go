// Command automato-probe is an interactive CLI: one subcommand per
// request variant, each opening the serial device, running a single
// transaction, and printing the reply.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openautomato/automato/pkg/automato"
	"github.com/openautomato/automato/pkg/automatoerr"
	"github.com/openautomato/automato/pkg/serialport"
	"github.com/openautomato/automato/pkg/transact"
)

var (
	device  string
	baud    int
	toID    int
	timeout time.Duration
)

func main() {
	root := &cobra.Command{
		Use:   "automato-probe",
		Short: "Send one request to a remote automato node and print the reply",
	}
	root.PersistentFlags().StringVar(&device, "device", "/dev/ttyUSB0", "serial device path")
	root.PersistentFlags().IntVar(&baud, "baud", 115200, "serial baud rate")
	root.PersistentFlags().IntVar(&toID, "id", 0, "destination automato node id")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 2420*time.Millisecond, "reply timeout")

	root.AddCommand(
		newPinmodeCmd(),
		newWritePinCmd(),
		newReadPinCmd(),
		newReadAnalogCmd(),
		newReadInfoCmd(),
		newReadHumidityCmd(),
		newReadTemperatureCmd(),
		newWriteMemCmd(),
		newReadMemCmd(),
		newReadFieldCmd(),
	)

	if err := root.Execute(); err != nil {
		color.Red("automato-probe: %v", err)
		os.Exit(1)
	}
}

func newPinmodeCmd() *cobra.Command {
	var pin, mode int
	cmd := &cobra.Command{
		Use:   "pinmode",
		Short: "Set a pin's direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.Pinmode{Pin: uint8(pin), Mode: uint8(mode)})
		},
	}
	cmd.Flags().IntVar(&pin, "pin", 0, "pin number")
	cmd.Flags().IntVar(&mode, "mode", 0, "0=input, 1=output")
	return cmd
}

func newWritePinCmd() *cobra.Command {
	var pin, state int
	cmd := &cobra.Command{
		Use:   "writepin",
		Short: "Write a digital pin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.WritePin{Pin: uint8(pin), State: uint8(state)})
		},
	}
	cmd.Flags().IntVar(&pin, "pin", 0, "pin number")
	cmd.Flags().IntVar(&state, "state", 0, "0 or 1")
	return cmd
}

func newReadPinCmd() *cobra.Command {
	var pin int
	cmd := &cobra.Command{
		Use:   "readpin",
		Short: "Read a digital pin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.ReadPin{Pin: uint8(pin)})
		},
	}
	cmd.Flags().IntVar(&pin, "pin", 0, "pin number")
	return cmd
}

func newReadAnalogCmd() *cobra.Command {
	var pin int
	cmd := &cobra.Command{
		Use:   "readanalog",
		Short: "Read an analog pin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.ReadAnalog{Pin: uint8(pin)})
		},
	}
	cmd.Flags().IntVar(&pin, "pin", 0, "pin number")
	return cmd
}

func newReadInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readinfo",
		Short: "Read the remote's general info block",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.ReadInfo{})
		},
	}
}

func newReadHumidityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readhumidity",
		Short: "Read the remote's humidity sensor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.ReadHumidity{})
		},
	}
}

func newReadTemperatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "readtemperature",
		Short: "Read the remote's temperature sensor",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.ReadTemperature{})
		},
	}
}

func newWriteMemCmd() *cobra.Command {
	var address int
	var dataHex string
	cmd := &cobra.Command{
		Use:   "writemem",
		Short: "Write a byte range of the remote's memory",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(dataHex)
			if err != nil {
				return fmt.Errorf("--data: %w", err)
			}
			p, code := automato.NewWriteMem(uint16(address), data)
			if code != automato.ResultOk {
				return fmt.Errorf("writemem rejected locally: %s", code)
			}
			return run(p)
		},
	}
	cmd.Flags().IntVar(&address, "address", 0, "start address")
	cmd.Flags().StringVar(&dataHex, "data", "", "hex-encoded bytes to write")
	return cmd
}

func newReadMemCmd() *cobra.Command {
	var address, length int
	cmd := &cobra.Command{
		Use:   "readmem",
		Short: "Read a byte range of the remote's memory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.ReadMem{Address: uint16(address), Length: uint8(length)})
		},
	}
	cmd.Flags().IntVar(&address, "address", 0, "start address")
	cmd.Flags().IntVar(&length, "length", 1, "number of bytes")
	return cmd
}

func newReadFieldCmd() *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "readfield",
		Short: "Read a field descriptor by index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(automato.ReadField{Index: uint16(index)})
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "field index")
	return cmd
}

func run(req automato.Payload) error {
	port, err := serialport.Open(serialport.Config{Device: device, BaudRate: baud})
	if err != nil {
		return err
	}
	session := transact.New(port)
	defer session.Close()

	fromID, reply, err := session.Transact(byte(toID), req, timeout)
	if err != nil {
		if ae, ok := err.(*automatoerr.Error); ok {
			color.Red("error: %s: %s", ae.Kind, ae.Description)
			return nil
		}
		return err
	}

	encoded, err := automato.EncodeJSON(reply)
	if err != nil {
		return err
	}
	color.Green("reply from node %d:", fromID)
	fmt.Println(string(encoded))
	return nil
}
