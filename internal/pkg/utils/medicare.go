package utils

import "strconv"

var medicareChecksumWeights = [8]int{1, 3, 7, 9, 1, 3, 7, 9}

// ValidMedicareNumber checks a 10 digit Australian Medicare card number:
// first digit 2-6, with the ninth digit being the weighted checksum of the
// first eight.
func ValidMedicareNumber(number string) bool {
	if len(number) != 10 {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}

	first := int(number[0] - '0')
	if first < 2 || first > 6 {
		return false
	}

	sum := 0
	for i, weight := range medicareChecksumWeights {
		digit := int(number[i] - '0')
		sum += digit * weight
	}

	checkDigit, err := strconv.Atoi(string(number[8]))
	if err != nil {
		return false
	}
	return sum%10 == checkDigit
}
