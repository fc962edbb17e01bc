package types_test

import (
	"testing"

	types "github.com/okian/spikefactor/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseProduct(t *testing.T) {
	Convey("Given product tags", t, func() {
		Convey("When the tag is a known product", func() {
			simple, err1 := types.ParseProduct("simple")
			premium, err2 := types.ParseProduct("  PREMIUM ")

			Convey("Then it should resolve regardless of case and spacing", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(simple, ShouldEqual, types.ProductSimple)
				So(premium, ShouldEqual, types.ProductPremium)
			})
		})

		Convey("When the tag is unknown", func() {
			p, err := types.ParseProduct("gold")

			Convey("Then it should return an error and an empty product", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "gold")
				So(p, ShouldEqual, types.Product(""))
			})
		})

		Convey("When listing products", func() {
			Convey("Then simple comes before premium", func() {
				So(types.Products(), ShouldResemble, []types.Product{types.ProductSimple, types.ProductPremium})
			})
		})
	})
}
