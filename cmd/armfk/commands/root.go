// Package commands implements the armfk command line. The tool
// solves the forward kinematics of a serial revolute-joint arm by
// composing per-joint comotors in the screw algebra.
package commands

import (
	"github.com/spf13/cobra"

	"zappem.net/pub/math/screw/arm"
	"zappem.net/pub/math/screw/internal/log"
)

var (
	centres  string
	planes   string
	angles   string
	end      string
	logLevel string
)

func Execute() error {
	return Root().Execute()
}

// Root builds the armfk command. The default flag values describe a
// six-joint reference arm reaching 40 units up the z axis.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "armfk",
		Short: "Revolute-arm forward kinematics via screw algebra",
		Long: `armfk composes one comotor per revolute joint, from the most
distal joint back to the base, and applies the resultant rigid motion
to the end-effector point.`,
		RunE: run,
	}
	root.Flags().StringVar(&centres, "centres", "0,0,10;0,0,10;0,0,20;0,0,30;0,0,30;0,0,30",
		"joint axis points, \"x,y,z\" separated by \";\"")
	root.Flags().StringVar(&planes, "planes", "e12;-e13;-e13;e12;-e13;e12",
		"unit rotation-plane bivectors per joint, e.g. \"e12;-e13\"")
	root.Flags().StringVar(&angles, "angles", "0,90,0,90,45,0",
		"joint angles in degrees")
	root.Flags().StringVar(&end, "end", "0,0,40", "end-effector resting point \"x,y,z\"")
	root.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")
	return root
}

func run(cmd *cobra.Command, args []string) error {
	log.Init(logLevel)

	cs, err := parseVectors(centres)
	if err != nil {
		return err
	}
	ps, err := parsePlanes(planes)
	if err != nil {
		return err
	}
	js, err := parseAngles(angles)
	if err != nil {
		return err
	}
	ev, err := parseVector(end)
	if err != nil {
		return err
	}
	if len(cs) != len(ps) || len(cs) != len(js) {
		return errArmShape(len(cs), len(ps), len(js))
	}

	joints := make([]arm.Joint, len(cs))
	for i := range cs {
		joints[i] = arm.Joint{Centre: cs[i], Plane: ps[i]}
	}
	a, err := arm.New(ev, joints...)
	if err != nil {
		return err
	}

	log.Debug("composing comotors", "joints", len(joints))
	total, pos, err := a.Forward(js)
	if err != nil {
		return err
	}
	log.Info("solved forward kinematics", "joints", len(joints))

	cmd.Printf("rotor:       %v\n", total.Direction())
	cmd.Printf("translation: %v\n", total.Moment())
	cmd.Printf("position:    (%g, %g, %g)\n", pos.X, pos.Y, pos.Z)
	return nil
}
