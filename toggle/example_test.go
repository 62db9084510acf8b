package toggle_test

import (
	"fmt"

	"github.com/tailored-agentic-units/toggle/toggle"
)

type photo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func Example() {
	t, err := toggle.New[photo](`{"selected": false, "value": {"id": 1, "name": "Fat Cat"}}`)
	if err != nil {
		fmt.Println(err)
		return
	}

	t.OnToggle().Subscribe(func(s toggle.State[photo]) {
		label := "Not Selected"
		if s.Selected {
			label = "Selected"
		}
		fmt.Printf("%s: %s\n", s.Value.Name, label)
	})

	t.Toggle()
	t.Toggle()

	if err := t.SetSelected("0"); err != nil {
		fmt.Println(err)
	}

	// Output:
	// Fat Cat: Selected
	// Fat Cat: Not Selected
	// Expected boolean value for toggle.selected, got string
}

func ExampleToggle_SetState() {
	t := toggle.Of("intial value", false)

	err := t.SetState(map[string]any{"selected": true})
	fmt.Println(err)
	fmt.Printf("%+v\n", t.State())

	// Output:
	// Expected object matching { selected: boolean, value: any }, got {"selected":true}
	// {Value:intial value Selected:false}
}
