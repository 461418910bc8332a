// Copyright 2020 Aleksandr Demakin. All rights reserved.

package safeint

import (
	"encoding/json"
	"fmt"
)

func ExampleSafeInt() {
	v1 := New(111222333444555)
	v2 := New(111222333444)
	div, mod := v1.DivMod(v2)
	fmt.Printf("%s / %s = %s, remainder %s\n", v1, v2, div, mod)

	sum := Max.Add(One)
	fmt.Printf("max + 1 = %s\n", sum)
	fmt.Printf("undefined propagates: %s\n", sum.Mul(Two))

	quo := One.Neg().Quo(Two)
	fmt.Printf("-1 quo 2 = %s, -1 div 2 = %s\n", quo, One.Neg().Div(Two))

	data, err := json.Marshal([]SafeInt{v2, sum})
	if err != nil {
		panic(err)
	}
	fmt.Printf("json: %s\n", data)

	// Output:
	// 111222333444555 / 111222333444 = 1000, remainder 555
	// max + 1 = undefined
	// undefined propagates: undefined
	// -1 quo 2 = 0, -1 div 2 = -1
	// json: [111222333444,null]
}

func ExampleSafeInt_Cmp() {
	values := []SafeInt{New(2), Undefined, New(-3)}
	fmt.Println(values[1].Cmp(values[0], true))
	fmt.Println(values[1].Cmp(values[0], false))
	fmt.Println(Undefined.Cmp(Undefined, true))

	// Output:
	// -1
	// 1
	// 0
}
