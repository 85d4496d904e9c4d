package session

// State is the controller's position in the menu flow.
type State int

const (
	MainMenu State = iota
	CreatingConfiguration
	ManagingSaves
	ManagingSlot
	PushingConfiguration
	Terminated
)

var stateNames = map[State]string{
	MainMenu:              "main_menu",
	CreatingConfiguration: "creating_configuration",
	ManagingSaves:         "managing_saves",
	ManagingSlot:          "managing_slot",
	PushingConfiguration:  "pushing_configuration",
	Terminated:            "terminated",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
